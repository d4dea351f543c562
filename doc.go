/*
Package touchui is a small retained-mode UI toolkit for embedded and
kiosk-style touchscreen applications.

The examples/ directory has small code examples for working with touchui.
Examples are the recommended starting point.

# Instructions and information

An application is a stack of scenes; the top-most or current scene is what is
shown in the window. Scenes are made of Views which are made of other Views.
Start with NewApp to create an App: essentially the window, the scene stack
and all shared UI state. Call Init, push at least one scene and call Run,
which blocks until quit.

Each view is rectangular and its dimensions are determined by the view's
frame. A view is backed by a Surface of the same size. After changing a
view's frame you must call Relayout, which resizes the backing surface and
gives each child view a chance to reposition or resize itself in response.

Events on views can trigger response code that you control. When a button is
released over the view that was pressed, your code can be called back. The
click is a Signal and your code is a slot. Widgets declare signals to which
you connect zero or more slots:

	button.OnClicked.Connect(func(args ...any) { ... })

Embedding View (or Scene, or a widget) in your own data structure is the way
to build up view hierarchies with behavior. Override the input handlers you
care about; the defaults do nothing.

The toolkit runs the overall application: Run polls the backend for device
events at a fixed tick rate, routes them to the views of the current scene,
then updates, draws and presents each frame. Everything runs on the calling
goroutine, no locking required.
*/
package touchui
