// SPDX-License-Identifier: MIT

package synth

import "errors"

// ErrParam indicates an invalid generator argument.
var ErrParam = errors.New("synth: invalid parameter")
