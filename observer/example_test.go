package observer_test

import (
	"os"

	"github.com/MSREDDY199/Design-Patterns/observer"
)

func ExampleDemo() {
	_ = observer.Demo(os.Stdout)

	// Output:
	// Writing the logs: Someone has opened the file: test_file.txt
	// Sending email to admin@example.com: Someone has changed the file: test_file.txt
}
