package interfaces

// IHTMLRenderer renders a named HTML template against a context map.
type IHTMLRenderer interface {
	Render(name string, data map[string]any) (string, error)
	// Check reports the fields the template reads that keys lack, and the
	// keys it never reads.
	Check(name string, keys []string) (missing, extra []string, err error)
}

// IWordRenderer fills the placeholders of the Word template.
type IWordRenderer interface {
	Render(values map[string]string) ([]byte, error)
	Check(keys []string) (missing, extra []string, err error)
}
