// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var ErrSignInRequired = errors.New("sign in to use remote storage: no access token configured")
