// Package cli implements the interactive gophroster session.
//
// A session starts with a login decision: a returning user proves identity
// by user id plus email or phone, a new user goes through onboarding. Both
// paths end in the main menu, which retrieves, updates and deletes records
// until the operator exits. Every write goes through staging.Protocol and
// therefore through a y/n confirmation.
//
// The session is started with App.Run, which blocks until it terminates.
package cli
