// Package nginx assembles the commands that install and control an nginx
// site on a deployment target.
//
// Every operation reads settings, optionally renders the template, and
// returns a script.Script. Nothing here talks to the target host; an
// executor.Runner runs or simulates the returned steps.
//
//	sc, err := nginx.Setup(template.NewLocator("."), s)
//	// # Installing nginx config file to /etc/nginx/sites-available/app_production.conf
//	// echo -ne '...' | sudo tee /etc/nginx/sites-available/app_production.conf > /dev/null
//	// # Symlinking nginx config file to /etc/nginx/sites-enabled/app_production.conf
//	// sudo ln -nfs ... ...
//	// # Restart Nginx
//	// sudo service nginx restart
//
// Install is the one operation that works on the local filesystem: it copies
// the bundled template into the project so it can be customized.
package nginx
