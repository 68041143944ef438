package cli

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedLanguages = []language.Tag{
	language.English,
	language.Chinese,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// SupportedLanguage maps any tag onto one with a translation, falling back
// to English.
func SupportedLanguage(tag language.Tag) language.Tag {
	_, index, _ := languageMatcher.Match(tag)
	return supportedLanguages[index]
}

func init() {
	zh := func(key, msg string) {
		if err := message.SetString(language.Chinese, key, msg); err != nil {
			panic(err)
		}
	}

	// publish
	zh("Generating static files in: %s", "将在目录 %s 生成静态文件")
	zh("Preparing to generate static files...", "正在准备生成静态文件...")
	zh("Generating static files with the app generator...", "使用应用自带的生成器生成静态文件...")
	zh("Fetching page content with an in-process request...", "使用测试客户端获取页面内容...")
	zh("Backed up existing file to: %s", "已备份现有文件到: %s")
	zh("Static HTML saved to: %s", "静态HTML文件已保存到: %s")
	zh("Copying other static assets...", "正在复制其他静态资源...")
	zh("Copied asset: %s", "已复制资源文件: %s")
	zh("Source and destination are the same file, skipping copy: %s", "源文件和目标文件是同一个文件，跳过复制: %s")
	zh("Static build complete!", "静态文件构建完成！")

	// report
	zh("%s (%s)", "%s（%s）")
	zh("generated by the app", "由应用生成")
	zh("rendered from GET /", "通过 GET / 渲染")
	zh("not rendered", "未渲染")
	zh("backup: %s", "备份: %s")
	zh("%s (not found)", "%s（未找到）")
	zh("%s (already in place)", "%s（已就位）")
	zh("%s (from %s)", "%s（来自 %s）")
	zh("Publish complete in %s", "发布完成，用时 %s")
	zh("Output: %s", "输出目录: %s")
	zh("Assets: %d copied, %d already in place, %d not found", "资源文件: 已复制 %d 个，已就位 %d 个，未找到 %d 个")

	// deploy instructions
	zh("Static HTML generated at: %s", "静态HTML文件已生成在: %s")
	zh("How to deploy to GitHub Pages:", "如何部署到GitHub Pages:")
	zh("Option 1: manual deployment", "方式一：手动部署")
	zh("Make sure you are in the project root", "确保您已经在项目根目录")
	zh("Add and commit all files", "添加并提交所有文件")
	zh("Push the files to the %s branch of your GitHub repository", "将文件推送到GitHub仓库的%s分支")
	zh("Example commands:", "手动部署示例命令：")
	zh("Option 2: automatic deployment (GitHub Actions)", "方式二：自动部署（已配置GitHub Actions）")
	zh("GitHub Actions runs every day at 00:00 UTC (08:00 Beijing time)", "GitHub Actions将在每天UTC时间0点（北京时间8点）自动运行")
	zh("It can also be triggered manually from the Actions page of the repository", "也可以通过GitHub仓库的Actions页面手动触发运行")
	zh("The automated build regenerates the static files and commits them to the current branch", "自动构建会生成静态文件并提交到当前分支")
	zh("Notes:", "注意：")
	zh("Replace %s and %s with your GitHub user name and repository name", "您需要将%s和%s替换为您的GitHub用户名和仓库名")
	zh("Make sure the repository permissions are configured; GitHub Actions can read the repository by default", "确保GitHub仓库有正确的权限配置，GitHub Actions默认可以访问仓库内容")
	zh("Private repositories may need additional secrets", "如果仓库是私有的，可能需要额外配置secrets")

	// check
	zh("Checking publish plan for: %s", "检查目录 %s 的发布计划")
	zh("Output directory is ready: %s", "输出目录可用: %s")
	zh("App %s generates its own files", "应用 %s 会自行生成文件")
	zh("App %s will be rendered with an in-process request", "应用 %s 将通过测试客户端渲染")
	zh("%s would be backed up to %s", "%s 将被备份到 %s")
	zh("Asset not found, it would be skipped: %s", "未找到资源文件，将跳过: %s")
	zh("%s is already in place, copy would be skipped", "%s 已就位，将跳过复制")
	zh("%s would be copied from %s with a backup", "%s 将从 %s 复制并备份原文件")
	zh("%s would be copied from %s", "%s 将从 %s 复制")
	zh("Plan looks good", "发布计划检查通过")

	// init
	zh("Initializing staticpub in: %s", "正在初始化 staticpub: %s")
	zh("Put your assets in %s and run staticpub", "请将资源文件放入 %s 后运行 staticpub")

	// errors
	zh("Error: %v", "错误：%v")
	zh("Publish failed: %v", "错误：生成静态文件时出现异常: %v")
	zh("Check failed: %v", "检查失败: %v")
	zh("Init failed: %v", "初始化失败: %v")
}
