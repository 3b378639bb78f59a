package sanitizer_test

import (
	"fmt"

	sanitizer "github.com/DavidShenkerman/XSS-Sanitizer"
)

func ExampleSanitize() {
	clean, _ := sanitizer.Sanitize(`<p>hi<script>alert(1)</script></p>`)
	fmt.Println(clean)
	// Output: <p>hi</p>
}

func ExampleSanitize_unwrap() {
	clean, _ := sanitizer.Sanitize(`<custom>hello<b>world</b></custom>`)
	fmt.Println(clean)
	// Output: hello<b>world</b>
}

func ExampleSanitize_linkHardening() {
	clean, _ := sanitizer.Sanitize(`<a href="https://x.com" target="_blank">x</a>`)
	fmt.Println(clean)
	// Output: <a href="https://x.com" target="_blank" rel="noopener noreferrer">x</a>
}

func ExampleStripTags() {
	text, _ := sanitizer.StripTags(`<p>Hello <b>world</b></p>`)
	fmt.Println(text)
	// Output: Hello world
}

func ExampleIsSafeURL() {
	fmt.Println(sanitizer.IsSafeURL("https://example.com/page"))
	fmt.Println(sanitizer.IsSafeURL("javascript:alert(1)"))
	// Output:
	// true
	// false
}
