package main

import "github.com/tomvill/f1-analytics/cmd"

func main() {
	cmd.Execute()
}
