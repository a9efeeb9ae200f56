// Package mock provides test doubles for the ai interfaces.
//
// The mocks generate deterministic embeddings from text hashes by default,
// and allow custom behavior injection through function fields for failure
// scenarios.
package mock
