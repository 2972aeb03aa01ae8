package requests

// ViewNotifier pushes events to connected dashboard views
//go:generate mockgen -destination=mocks/mock_notifier.go -package=mocks github.com/Mat0512/roadbuddy-client/services/requests ViewNotifier
type ViewNotifier interface {
	NotifyUser(userID, event string, data interface{})
	NotifyAll(event string, data interface{})
}
