package scrollhero

// DefaultCaretOffset places the caret right after the greeting expression
// in the seeded App.js. It must be kept in step with demoApp.
const DefaultCaretOffset = 322

const demoApp = `import { useState } from "react";
import "./styles.css";

const greetings = ["Hello", "Hola", "Hej"];

export default function App() {
  const [index, setIndex] = useState(0);
  const next = () => setIndex((index + 1) % greetings.length);

  return (
    <main className="hero">
      <h1 onClick={next}>{greetings[index]} world</h1>
      <p>Edit this file and watch the preview update.</p>
    </main>
  );
}
`

const demoStyles = `.hero {
  font-family: sans-serif;
  display: grid;
  place-items: center;
  min-height: 100vh;
}

h1 {
  cursor: pointer;
}
`

// DemoFiles returns the files the hero editor is seeded with.
func DemoFiles() map[string]string {
	return map[string]string{
		"App.js":     demoApp,
		"styles.css": demoStyles,
	}
}
