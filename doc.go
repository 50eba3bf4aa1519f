// Package concreteness computes lexical concreteness metrics for English text.
//
// Every word is looked up in a ratings table that maps lowercase words to a
// concreteness score between 1 (highly abstract, e.g. "justice") and 5
// (highly concrete, e.g. "chair"). Two aggregates are provided:
//   - AvgTextConcreteness: mean rating of the words in a text
//   - ConcreteAbstractRatio: very concrete words per very abstract word
//
// The default table is embedded in the package and parsed once on first use.
// Callers with their own dataset build a Table with LoadTable and pass it to
// New.
//
// Basic usage:
//
//	avg := concreteness.AvgTextConcreteness("The dog sat on a chair", concreteness.Options{})
//	ratio := concreteness.ConcreteAbstractRatio("Freedom and justice", concreteness.Options{})
//
// With an explicit table:
//
//	table, err := concreteness.LoadTableFile("ratings.csv")
//	if err != nil {
//	    return err
//	}
//	analyzer := concreteness.New(table)
//	result := analyzer.Analyze(text, concreteness.Options{Explain: true})
package concreteness
