// Package layout turns located features into drawing commands. It knows
// nothing about files or graphics libraries; a backend replays the
// commands in order.
package layout
