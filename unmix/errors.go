// SPDX-License-Identifier: MIT

package unmix

import "errors"

// ErrNotBijective is returned by Recipe when the recipe fails mix.Recipe.Validate.
// The validation error is wrapped alongside it.
var ErrNotBijective = errors.New("unmix: recipe is not a bijection")
