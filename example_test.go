package dataspec_test

import (
	"fmt"

	dataspec "github.com/reoring/dataspec"
)

func ExampleValidate() {
	schema, _ := dataspec.LoadText(`
<<root>>:
  servers:
    type: array
    items:
      $ref: '#/Server'
Server:
  properties:
    host:
      type: string
    port:
      type: integer
    comment:
      type: string
      optional: true
`)
	data, _ := dataspec.LoadText(`
servers:
  - host: web-1
    port: 8080
`)
	if err := dataspec.Validate(data, schema); err == nil {
		fmt.Println("valid")
	}
	// Output: valid
}

func ExampleSearch() {
	data, _ := dataspec.LoadText(`
servers:
  - host: web-1
    port: 8080
  - host: web-2
    port: 9090
`)
	v, _ := dataspec.Search(data, `servers[host="web-2"].port`)
	fmt.Println(v)
	// Output: 9090
}
