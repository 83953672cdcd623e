// @title           AItech API
// @version         1.0
// @description     REST API сайта компании AItech и модуля управления сотрудниками.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:5000
// @BasePath        /

package main

import "aitech_backend/internal/app"

func main() {
	app.Run()
}
