// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cor

import (
	"context"
	"errors"
	"fmt"
)

// BaseContext is the default Context. It is not safe for concurrent use; a
// workflow run owns its context exclusively.
type BaseContext struct {
	data     map[string]any
	errors   map[string]error
	errOrder []string
	context  context.Context
}

// NewBaseContext returns an empty context bound to ctx.
//
// Inputs:
//   - ctx: The Go context for the run. It may be replaced later with SetContext.
//
// Outputs:
//   - Context: A new, empty context object.
func NewBaseContext(ctx context.Context) Context {
	return &BaseContext{
		data:    make(map[string]any),
		errors:  make(map[string]error),
		context: ctx,
	}
}

// SetContext sets the underlying Go context.
func (c *BaseContext) SetContext(context context.Context) {
	c.context = context
}

// GetContext retrieves the underlying Go context.
func (c *BaseContext) GetContext() context.Context {
	return c.context
}

// Add stores a key-value pair in the context's data map.
func (c *BaseContext) Add(key string, value any) Context {
	c.data[key] = value
	return c
}

// Get returns the value stored under key, or nil.
func (c *BaseContext) Get(key string) any {
	return c.data[key]
}

// Remove deletes key from the data map.
func (c *BaseContext) Remove(key string) {
	delete(c.data, key)
}

// AddError records err for the named command. A second error from the same
// command replaces the first.
func (c *BaseContext) AddError(key string, err error) {
	if _, seen := c.errors[key]; !seen {
		c.errOrder = append(c.errOrder, key)
	}
	c.errors[key] = err
}

// GetErrors returns the recorded errors keyed by command name.
func (c *BaseContext) GetErrors() map[string]error {
	return c.errors
}

// HasErrors reports whether any command recorded an error.
func (c *BaseContext) HasErrors() bool {
	return len(c.errors) > 0
}

// Err joins the recorded errors, each prefixed with its command name.
func (c *BaseContext) Err() error {
	if len(c.errOrder) == 0 {
		return nil
	}
	errs := make([]error, 0, len(c.errOrder))
	for _, key := range c.errOrder {
		errs = append(errs, fmt.Errorf("%s: %w", key, c.errors[key]))
	}
	return errors.Join(errs...)
}
