// Copyright Silicore Systems Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package macro

import "fmt"

// LayoutError reports a memory whose declared layout cannot be extracted,
// such as masking requested over a nested aggregate element type.  It always
// carries the module and memory the offending declaration was found in.
type LayoutError struct {
	// Module owning the offending memory.
	Module string
	// Name of the offending memory.
	Memory string
	// Underlying cause.
	Err error
}

func (p *LayoutError) Error() string {
	return fmt.Sprintf("module \"%s\", memory \"%s\": %s", p.Module, p.Memory, p.Err.Error())
}

func (p *LayoutError) Unwrap() error {
	return p.Err
}

// InternalError reports a broken invariant within the transform or the
// passes feeding it.  These indicate pipeline bugs rather than problems with
// the input design.
type InternalError struct {
	msg string
}

func (p *InternalError) Error() string {
	return fmt.Sprintf("internal failure: %s", p.msg)
}

func internalErrorf(format string, args ...any) *InternalError {
	return &InternalError{fmt.Sprintf(format, args...)}
}
