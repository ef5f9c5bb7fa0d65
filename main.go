/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package main

import (
	"github.com/hance08/fixpay/cmd"
	"github.com/hance08/fixpay/migrations"
)

func main() {
	cmd.Execute(migrations.FS)
}
