// Package consts defines keys shared across packages.
package consts
