// Command citaa reads an ASCII-art diagram and renders it to a PNG.
package main

import "log"

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
