// Command subfx replays substep effects on an HTML presentation and checks
// its substep markup.
//
//    subfx replay deck.html --start 0 --moves next,next,prev,goto:2
//    subfx lint deck.html
//
package main

func main() {
	Execute()
}
