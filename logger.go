package region

// Logger is the minimal sink an Arena uses to report conditions that its
// public API can only otherwise signal as a nil return (principally a
// page-source failure). It is satisfied by *log.Logger, a
// *zap.SugaredLogger, a *logrus.Logger, or any other logging framework's
// adapter — this module takes no direct dependency on any of them so that
// embedding it doesn't force a logging framework choice onto the caller.
type Logger interface {
	Printf(format string, args ...any)
}
