package background

import "errors"

// ErrStopRenewWorkflow tells a periodic workflow not to schedule its next
// run.
var ErrStopRenewWorkflow = errors.New("stop renew workflow")
