package other

import (
	"fmt"
	"os"
)

func render(s string) {
	fmt.Println(s)
	os.Stdout.WriteString(s)
}
