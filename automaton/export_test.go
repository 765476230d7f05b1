package automaton

// ExtractRequiredLiteral exposes extractRequiredLiteral to automaton_test,
// which needs package combinator (and combinator imports automaton),
// making an internal test file that imports combinator an import cycle.
var ExtractRequiredLiteral = extractRequiredLiteral
