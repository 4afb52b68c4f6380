// Package sequence parses recorded codepoint lists such as
//
//	[27, 91, 51, 49, 109]
//
// into an ordered Sequence of integers. The accepted grammar is deliberately
// small: decimal integers (optionally negative), commas, whitespace and one
// optional pair of surrounding brackets. A single trailing comma is tolerated.
// Nothing in the input is ever evaluated.
//
//	<list>  :: <ws> ( "[" <ws> <items>? <ws> "]" | <items> ) <ws>
//	<items> :: <int> ( <ws> "," <ws> <int> )* ( <ws> "," )?
//	<int>   :: "-"? <digit>+
package sequence
