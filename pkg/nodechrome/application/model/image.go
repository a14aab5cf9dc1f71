package model

import "fmt"

type Image struct {
	Namespace string
	Name      string
}

// NodeChrome is the repository every image of this project is published to.
var NodeChrome = Image{Namespace: "ngeor", Name: "node-chrome"}

func (image Image) Ref(tag string) string {
	return fmt.Sprintf("%v/%v:%v", image.Namespace, image.Name, tag)
}

type Credentials struct {
	Username string
	Password string
}
