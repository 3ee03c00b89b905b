// Package timeline turns a schedule snapshot into pixel-space geometry for a
// Gantt view and interprets pointer drags as reschedule requests.
//
// Everything except DragController is a pure function of its inputs: the
// same snapshot, zoom and "now" always produce the same Chart, and the
// snapshot is never modified. Dates are mapped onto whole calendar days;
// sub-day positions are not represented.
package timeline
