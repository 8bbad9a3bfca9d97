package storefront

// Notifier receives the transient user-visible notices the stores emit.
// It is the toast layer, from the stores' point of view.
type Notifier interface {
	Success(message string)
	Info(message string)
}

// NopNotifier discards every notice.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Info(string)    {}
