// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnavailable, "cluster not ready after setup")

	assert.Equal(t, ErrCodeUnavailable, err.Code)
	assert.Equal(t, "[SERVICE_UNAVAILABLE] cluster not ready after setup", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeUnavailable, "failed to start minikube", cause)

	assert.Equal(t, "[SERVICE_UNAVAILABLE] failed to start minikube: connection refused", err.Error())
	assert.True(t, stderrors.Is(err, cause))
}

func TestErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("scenario failed: %w", Wrap(ErrCodeTimeout, "probe exceeded deadline", nil))

	var structured *StructuredError
	assert.True(t, stderrors.As(wrapped, &structured))
	assert.Equal(t, ErrCodeTimeout, structured.Code)
}
