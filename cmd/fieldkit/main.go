// Command fieldkit runs the validation, CSV and aggregation exercises
// against the files in a data directory.
package main

func main() {
	Execute()
}
