/*
Copyright 2024 Simon Murray

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cdcl

import (
	"errors"

	"github.com/spjmurray/gopart/cnf"
)

// asConflictError is a thin errors.As wrapper kept as a named helper so
// call sites read as intent ("is this a conflict") rather than untyped
// error-handling boilerplate.
func asConflictError(err error, target **conflictError) bool {
	return errors.As(err, target)
}

// varLit builds the cnf.Lit for variable v with the given polarity.
func varLit(v *variable, positive bool) cnf.Lit {
	return cnf.NewLit(v.id, positive)
}
