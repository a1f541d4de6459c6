// Package prompt asks a user for input on a console until the answer is
// acceptable.
//
// A Session pairs a raw-value Source with display settings. Fetch prints the
// optional message and the prompt, reads one raw value and runs it through a
// Transform. A *ValidationError from the source or the transform discards the
// rest of the offending input line, prints the session's error message and
// asks again. Any other error ends the loop and is returned to the caller.
//
// Every session built on the same Console shares one buffered input Stream, so
// a line-oriented read after a token-oriented read sees the leftovers of the
// previous line:
//
//	console := prompt.NewConsole(os.Stdin, os.Stdout)
//	age, err := prompt.ForInteger(console).
//		SetMessage("How old are you?").
//		Fetch()
//	ok, err := prompt.BinaryChoice(console, "Save changes?")
//	console.Pause()
package prompt
