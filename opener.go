package flightbag

// Opener opens a URL in the system's default application.
type Opener interface {
	// Open launches the default handler for the URL and returns without
	// waiting for it to close.
	Open(url string) error
}
