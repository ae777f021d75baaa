// Package view derives everything the dashboard shows from a receiver state:
// the Broadcast/Manual visualization mode, the RX/WX block order, the text and
// indicator content of each display element, and the detail panel lines.
//
// Nothing here holds state. Each function is evaluated per frame from
// whatever the store returned at the start of that frame, including nil.
package view
