package gateway

const (
	defaultBindAddress = "localhost"
	defaultPort        = "26659"
)
