package main

import "github.com/smartexpense/expense-tracker/cmd"

func main() {
	cmd.Execute()
}
