// Command postman computes a closed walk covering every required edge of a
// rural-postman instance.
//
//	postman [flags] <instance-file>
//	postman generate grid --rows 4 --cols 5 --seed 7 > grid.txt
package main

import (
	"os"
)

var version = "dev"

func main() {
	os.Exit(Execute(os.Args[1:], os.Stdout, os.Stderr))
}
