// Package core holds small numeric helpers shared by the image packages.
// Nothing in here knows about image dimensions.
package core
