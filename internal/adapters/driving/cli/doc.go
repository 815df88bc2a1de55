// Package cli is the podreport command line. Commands call the driving
// ports only; cmd/podreport supplies the wiring that builds them.
package cli
