// Command argbind demonstrates go-argbind by binding its arguments onto a
// sample configuration and printing the diagnostics.
//
//	argbind bind -- --count 3 -v true report.txt 2
//	argbind slots
package main
