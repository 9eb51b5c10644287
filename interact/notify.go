package interact

//go:generate mockgen -source notify.go -destination ./mocks/notify.go -package mock_interact

// Notifier reports rejected operations to the user
type Notifier interface {
	Notify(message string)
}
