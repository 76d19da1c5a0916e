package main

import (
	"fmt"

	"github.com/Wellify-Group/wellify-business-sub000/internal/service"
)

func main() {
	fmt.Println(service.GenerateAccessCode())
}
