// Package dial solves the day 1 puzzle: a combination-lock dial with 100
// positions (0..99) is turned left and right by a list of steps, starting
// from position 50.
//
// 🚀 What is counted?
//
//	Part one counts how many steps leave the dial resting exactly on 0.
//	Part two counts every time the dial points at 0 while turning, i.e. the
//	number of full 100-position wraps crossed by each step.
//
// ✨ Key pieces:
//   - Parse turns "L68\nR48\n..." into []Step
//   - Rotations(from, amount) is the wrap-counting state transition
//   - Dial carries the position and folds Rotations over the steps
//   - WithStart / WithSize tune the dial (defaults: start 50, size 100)
//
// ⚙️ Usage:
//
//	steps, err := dial.Parse(input)
//	stops, err := dial.CountZeroStops(steps)
//	passes, err := dial.CountZeroPasses(steps)
//
// Rotations treats a move that ends on 0 going left as one extra wrap,
// while a move that starts on 0 never counts its starting point:
//
//	Rotations(0, -100)  == (0, 1)
//	Rotations(55, -55)  == (0, 1)
//	Rotations(0, -1)    == (99, 0)
//
// Complexity: O(len(steps)) time, O(1) extra memory.
package dial
