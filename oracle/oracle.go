// Package oracle defines the suggestion oracle interface and implementations.
package oracle

import "github.com/ZaguanLabs/isoglot"

// Oracle is the interface for suggestion backends.
// This is an alias to the main package interface for convenience.
type Oracle = isoglot.Oracle

// SuggestRequest is an alias to the main package type.
type SuggestRequest = isoglot.SuggestRequest
