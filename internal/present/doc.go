// Package present turns the sort controller into pictures and key presses
// into controller commands. It knows nothing about windows or terminals: a
// front-end supplies a Renderer and an InputSource and the Loop does the rest.
package present
