package main

import "github.com/nikogura/cv-evaluator/cmd"

func main() {
	cmd.Execute()
}
