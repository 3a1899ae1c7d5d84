// Package client runs the Summarium terminal client.
//
// [App] alternates between the sign-in program and the main screens until
// the user quits. The retention worker that prunes local snapshots runs
// only while a user is signed in.
package client
