// Copyright 2025 OpenCivic Labs
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


package ai

import (
	"context"
	"errors"
)

var (
	// ErrContentRejected indicates the collaborator refused the input itself
	// (e.g. text too long for the embedding model). Not retryable: the same
	// input will be rejected again.
	ErrContentRejected = errors.New("content rejected by model")

	// ErrMalformedResponse indicates the collaborator answered with output
	// that could not be parsed after repair attempts.
	ErrMalformedResponse = errors.New("malformed model response")
)

// IsRetryable reports whether an error from an AI collaborator is worth
// retrying. Content rejections and context cancellation are permanent;
// everything else (network, rate limits, 5xx) is treated as transient.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrContentRejected) || errors.Is(err, ErrMalformedResponse) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}
