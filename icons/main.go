// Command icons 去掉 Oscar 图片的白色背景并生成扩展需要的各尺寸图标
//
// 用法：
//  1. 把 Oscar 图片保存为本目录下的 oscar-original.png
//  2. go generate ./icons （或在本目录 go run .）
package main

//go:generate go run .

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/chaos-io/oscar-icons/iconset"
	"github.com/chaos-io/oscar-icons/util"
)

const source = "oscar-original.png"

func main() {
	dir, err := scriptDir()
	if err != nil {
		log.Fatal("Failed to resolve icons directory: ", err)
	}
	if err := os.Chdir(dir); err != nil {
		log.Fatal("Failed to change directory: ", err)
	}

	if err := run(os.Stdout, dir); err != nil {
		log.Fatal(err)
	}
}

// run 处理 dir 下的 source，输出写回 dir；source 不存在时只打印提示
func run(out io.Writer, dir string) error {
	path := filepath.Join(dir, source)
	ok, err := util.FileExists(path)
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintf(out, "Error: %s not found!\n", source)
		_, _ = fmt.Fprintf(out, "Please save the Oscar dog image as '%s' in:\n", source)
		_, _ = fmt.Fprintf(out, "  %s\n", dir)
		return nil
	}

	if _, err := iconset.NewGenerator(out).Generate(path, dir); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, "\nDone! Reload the extension in Chrome to see the new icons.")
	return nil
}

// scriptDir 返回本命令源码所在目录；源码目录不存在（例如安装后的二进制）时退回可执行文件所在目录
func scriptDir() (string, error) {
	if _, file, _, ok := runtime.Caller(0); ok {
		dir := filepath.Dir(file)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}

	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
