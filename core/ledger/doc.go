// Package ledger provides the charge ledger client backed by Stripe.
//
// The client fetches the processor's charge records for a closed date
// range and maps them to the engine's snapshot type. Listing exhausts
// pagination through the stripe-go iterator, so the result covers every
// charge in range regardless of page size.
//
// The secret key is injected through Config at construction time rather
// than read from the process environment, so the engine can be exercised
// with fake clients in tests.
//
// Timestamps cross the Stripe boundary as Unix epoch seconds.
package ledger
