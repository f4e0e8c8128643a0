package providers

// NotificationKind classifies a user-facing notification.
type NotificationKind string

const (
	NotifyInfo    NotificationKind = "info"
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// NotifierInterface is the fire-and-forget sink for mutation outcomes. It
// never blocks and never fails the calling mutation.
type NotifierInterface interface {
	Notify(kind NotificationKind, title string, detail string)
}

// LogNotifier writes notifications to the app log channel. A UI frontend
// would replace this with its toast mechanism.
type LogNotifier struct {
	logger Logger
}

func NewNotifier(logger Logger) NotifierInterface {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(kind NotificationKind, title string, detail string) {
	if kind == NotifyError {
		n.logger.Warnf(TypeApp, "[%s] %s: %s", kind, title, detail)
		return
	}
	n.logger.Infof(TypeApp, "[%s] %s: %s", kind, title, detail)
}
