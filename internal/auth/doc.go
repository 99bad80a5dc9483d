// Package auth keeps the local identity of the educalm user: a simulated
// Google session or the guest flag.
package auth
