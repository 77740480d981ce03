// Package rsync keeps passive rendering layers scroll-aligned with the
// primary input surface.
//
// The input surface is the sole owner of the authoritative scroll offset.
// On every scroll event the vertical offset is copied verbatim to every
// attached surface; the horizontal offset is copied only to surfaces that
// render pre-formatted text and opted into horizontal mirroring. The
// package also maps pointer events on an overview strip back to a target
// scroll offset that centers the viewport on the clicked position.
package rsync
