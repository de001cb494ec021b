package engine

import (
	"fmt"
	"io"
	"log"
	"os"
)

func render(w io.Writer, s string) {
	fmt.Println(s)          // want `do not call fmt.Println\(\), return the text instead`
	fmt.Printf("%s\n", s)  // want `do not call fmt.Printf\(\), return the text instead`
	println(s)              // want `do not call println\(\), return the text instead`
	fmt.Fprintln(os.Stderr) // want `do not use os.Stderr, return the text instead`
	os.Stdout.WriteString(s) // want `do not use os.Stdout, return the text instead`
	fmt.Fprintln(w, s)
	log.Printf("%s", s)
	_ = fmt.Sprintf("%s", s)
	_ = os.Getenv("HOME")
}
