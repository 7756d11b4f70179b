package ports

type Notifier interface {
	Success(message string)
	Warn(message string)
	Error(message string)
}

type Navigator interface {
	Open(url string) error
}
