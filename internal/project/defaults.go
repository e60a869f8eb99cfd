package project

// DefaultProjectName is the name of a session that has not been saved yet.
const DefaultProjectName = "Untitled Project"

// DefaultBundle returns the built-in starter sources loaded into a fresh
// session.
func DefaultBundle() SourceBundle {
	return SourceBundle{HTML: defaultHTML, CSS: defaultCSS, JS: defaultJS}
}

const defaultHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Brutalist CodeAssist</title>
</head>
<body>
  <div class="container">
    <h1>🚧 Welcome To CodeAssist</h1>
    <p>This is your playground. Edit the HTML, CSS, and JS to build bold things!</p>
    <button id="changeColorBtn">Toggle Shadow</button>
  </div>
</body>
</html>`

const defaultCSS = `body {
  font-family: 'Courier New', Courier, monospace;
  margin: 0;
  padding: 0;
  background-color: #fff;
  color: #000;
}

.container {
  width: 80%;
  margin: 40px auto;
  padding: 20px;
  background-color: #ffeb00;
  border: 5px solid black;
  box-shadow: 8px 8px 0 black;
}

h1 {
  font-size: 2.5rem;
  font-weight: 900;
  background: black;
  color: #ffeb00;
  padding: 10px;
  margin: 0 0 10px 0;
  text-transform: uppercase;
  box-shadow: 6px 6px 0 #000;
  transition: box-shadow 0.3s ease;
}

p {
  font-size: 0.95rem;
  font-weight: bold;
  margin: 10px 0;
}

button {
  background-color: black;
  color: #ffeb00;
  border: 3px solid black;
  padding: 8px 12px;
  font-size: 1rem;
  font-weight: 700;
  cursor: pointer;
  margin-top: 10px;
  box-shadow: 4px 4px 0 black;
  text-transform: uppercase;
  transition: box-shadow 0.3s ease;
}

button:hover {
  background-color: #ffeb00;
  color: black;
  box-shadow: none;
}

.no-shadow {
  box-shadow: none !important;
}`

const defaultJS = `document.addEventListener('DOMContentLoaded', function() {
  const changeColorBtn = document.getElementById('changeColorBtn');
  const header = document.querySelector('h1');

  changeColorBtn.addEventListener('click', function() {
    // Toggle shadows on header and button
    header.classList.toggle('no-shadow');
    this.classList.toggle('no-shadow');
  });
});`
