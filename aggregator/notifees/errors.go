package notifees

import "errors"

var errNilLogger = errors.New("nil logger")
