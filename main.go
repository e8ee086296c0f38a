/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/stayops/airtable-booking-gateway/cmd"

func main() {
	cmd.Execute()
}
